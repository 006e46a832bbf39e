package static

import (
	"embed"
)

//go:embed css img js
var Files embed.FS
