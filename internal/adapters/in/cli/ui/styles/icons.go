package styles

// Plain glyphs only; the menu must render on a bare Windows console too.
const (
	IconSuccess = "✔"
	IconError   = "✖"
	IconWarning = "!"
	IconInfo    = "i"
	IconBullet  = "•"

	Separator = "──────────────"
)
