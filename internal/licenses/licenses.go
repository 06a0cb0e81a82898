// Package licenses embeds the notices printed by `ydt licenses` and
// `ydt disclaimer`.
package licenses

import _ "embed"

//go:embed embedded/THIRD_PARTY_NOTICES.md
var noticesText string

//go:embed embedded/DISCLAIMER.md
var disclaimerText string

func NoticesText() string {
	return noticesText
}

func DisclaimerText() string {
	return disclaimerText
}
