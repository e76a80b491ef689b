package graphics

const (
	WinWidth  = 1280
	WinHeight = 800

	WindowTitle = "Sana'a Nights"
)
