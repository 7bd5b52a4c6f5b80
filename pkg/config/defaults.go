package config

// Default configuration values.
const (
	DefaultOutputDir    = "reports"
	DefaultOutputLocale = "pt-BR"

	DefaultChartWidth     = "100%"
	DefaultChartHeight    = "500px"
	DefaultChartPalette   = ""
	DefaultChartPointSize = 8

	DefaultThemeTitleFont      = "Playfair Display"
	DefaultThemeBodyFont       = "Source Sans Pro"
	DefaultThemeBaseSize       = 12
	DefaultThemeGrid           = true
	DefaultThemeBorder         = "half"
	DefaultThemeLegendPosition = "bottom"

	DefaultFontsWebLoaded = true

	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"
)
