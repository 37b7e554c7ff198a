package cli

const ignoreFlag = "--ignore"

// normalizeArgs rewrites every token after the first bare --ignore into an
// --ignore=<token> flag, so pattern consumption runs to the end of the
// argument list even for tokens that look like flags.
func normalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg != ignoreFlag {
			continue
		}
		out := make([]string, 0, len(args)-1)
		out = append(out, args[:i]...)
		for _, pattern := range args[i+1:] {
			out = append(out, ignoreFlag+"="+pattern)
		}
		return out
	}
	return args
}
