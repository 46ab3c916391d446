package system

var (
	shell = "cmd"
	flags = []string{"/C"}
)

func formatCommandError(output []byte, err error) string {
	if len(output) == 0 {
		return err.Error()
	}

	return string(output)
}
