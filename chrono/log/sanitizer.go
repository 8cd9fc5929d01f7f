package log

import (
	"context"
	"fmt"
	"strings"
)

// controlChars escapes the characters that let caller text forge extra log lines.
var controlChars = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// SanitizeString escapes control characters in caller-supplied text, such as
// a date string that failed to parse.
func SanitizeString(s string) string {
	return controlChars.Replace(s)
}

// SafeError logs err at error level under msg. Error text often quotes the
// rejected input, so it is escaped first. In production only the error's
// dynamic type is logged.
func SafeError(logger Logger, ctx context.Context, msg string, err error, production bool) {
	if err == nil || logger == nil || !logger.Enabled(LevelError) {
		return
	}

	field := String("error", SanitizeString(err.Error()))
	if production {
		field = String("error_type", fmt.Sprintf("%T", err))
	}

	logger.Log(ctx, LevelError, msg, field)
}
