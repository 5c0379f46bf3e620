package env

import "os"

// PathValue returns the value of the PATH/Path environment variable,
// handling the case difference between Windows ("Path") and Unix ("PATH").
func PathValue() string {
	if p := os.Getenv("Path"); p != "" {
		return p
	}
	return os.Getenv("PATH")
}
