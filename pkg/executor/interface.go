package executor

import "context"

// Executor runs external commands. Stdout and stderr are returned separately:
// the transcription backend reads detected-language metadata from stderr.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}
