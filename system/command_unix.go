//go:build !windows
// +build !windows

package system

var (
	shell = "/bin/sh"
	flags = []string{"-c"}
)

func formatCommandError(output []byte, err error) string {
	if len(output) == 0 {
		return err.Error()
	}

	return string(output)
}
