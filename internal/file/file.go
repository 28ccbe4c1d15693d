package file

import "os"

// Exists returns a bool indicating whether the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
