// Package ui renders terminal output for the tokenapi commands.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#00D26A")
	amber  = lipgloss.Color("#FFB800")
	red    = lipgloss.Color("#FF4444")
	cyan   = lipgloss.Color("#00B4D8")
	white  = lipgloss.Color("#FFFFFF")
	gray   = lipgloss.Color("#555555")
	navy   = lipgloss.Color("#1E3A5F")
	purple = lipgloss.Color("#9B5DE5")
	pink   = lipgloss.Color("#F15BB5")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(amber).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(red).Bold(true)
	addrStyle    = lipgloss.NewStyle().Foreground(cyan)
	valueStyle   = lipgloss.NewStyle().Foreground(white).Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(gray)
	chainStyle   = lipgloss.NewStyle().Foreground(purple).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(pink).Bold(true)
	cellStyle    = lipgloss.NewStyle().Foreground(white)
	titleStyle   = lipgloss.NewStyle().Foreground(purple).Bold(true).MarginBottom(1)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(navy).
			Padding(0, 1)
)

// Banner is the first line printed by interactive commands.
func Banner(version string) string {
	return chainStyle.Render("tokenapi") + " " + metaStyle.Render("v"+version+"  ERC20 read/write API")
}

func Success(msg string) string { return successStyle.Render("✓ " + msg) }
func Warn(msg string) string { return warnStyle.Render("⚠ " + msg) }
func Err(msg string) string { return errStyle.Render("✗ " + msg) }

// Addr highlights an address or hash.
func Addr(a string) string { return addrStyle.Render(a) }

func Meta(m string) string { return metaStyle.Render(m) }
func ChainName(c string) string { return chainStyle.Render(c) }

// TruncateAddr shortens a hex address to 0x1234…5678.
func TruncateAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
