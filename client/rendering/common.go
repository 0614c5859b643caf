package rendering

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/client/global"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	HighlightedColor = lipgloss.Color("33")
	BlackTextColor   = lipgloss.Color("0")
	HitColor         = lipgloss.Color("160")
	SunkColor        = lipgloss.Color("88")
	MissColor        = lipgloss.Color("244")
	WaterColor       = lipgloss.Color("24")
	ShipColor        = lipgloss.Color("250")
	InvalidColor     = lipgloss.Color("203")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)

	PanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1)
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(MissColor)

	titleCaser = cases.Title(language.English)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

func CenterBlock(block string, text string) string {
	w, h := lipgloss.Size(block)
	return Center(w, h, text)
}

// Title turns "patrol boat" into "Patrol Boat".
func Title(text string) string {
	return titleCaser.String(text)
}
