// Package scaffold writes a starter includefolder.yaml for "includefolder init".
package scaffold
