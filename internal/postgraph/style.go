package postgraph

import (
	"fmt"
	"strings"
)

// writeStyles writes the <style> block: color variables for both schemes
// followed by the layout rules.
func writeStyles(builder *strings.Builder, cfg Config) {
	prefix := cfg.Prefix

	builder.WriteString("<style>\n")

	fmt.Fprintf(builder, "%s {\n", cfg.SelectorLight)
	writeVariables(builder, prefix, cfg.LightPalette(), "  ")
	builder.WriteString("}\n")

	if cfg.SelectorDark != "" {
		fmt.Fprintf(builder, "%s {\n", cfg.SelectorDark)
		writeVariables(builder, prefix, cfg.DarkPalette(), "  ")
		builder.WriteString("}\n")
	} else {
		builder.WriteString("@media (prefers-color-scheme: dark) {\n  :root {\n")
		writeVariables(builder, prefix, cfg.DarkPalette(), "    ")
		builder.WriteString("  }\n}\n")
	}

	fmt.Fprintf(builder, `.%[1]s {
  color: var(--%[1]s-text);
  margin: 20px 0;
  font-size: 0.8em;
}
.%[1]s__year {
  text-align: center;
  font-weight: bold;
  margin-bottom: 10px;
}
.%[1]s__months {
  display: flex;
  justify-content: space-between;
  margin-bottom: 10px;
}
@media (max-width: 410px) {
  .%[1]s__months {
    display: none;
  }
}
.%[1]s__squares {
  display: grid;
  grid-column-start: 2;
  grid-template-rows: repeat(7, 1fr);
  grid-auto-flow: column;
  margin-bottom: 10px;
  grid-gap: 2px;
}
.%[1]s__box {
  aspect-ratio: 1 / 1;
  background: var(--%[1]s-box);
}
.%[1]s__box--empty {
  background: none;
}
.%[1]s__hasPost {
  background: var(--%[1]s-box-highlight);
}
`, prefix)

	if cfg.NoLabels {
		fmt.Fprintf(builder, ".%[1]s__year, .%[1]s__months {\n  display: none;\n}\n", prefix)
	}

	builder.WriteString("</style>")
}

func writeVariables(builder *strings.Builder, prefix string, palette Palette, indent string) {
	fmt.Fprintf(builder, "%s--%s-box: %s;\n", indent, prefix, palette.Box)
	fmt.Fprintf(builder, "%s--%s-box-highlight: %s;\n", indent, prefix, palette.Highlight)
	fmt.Fprintf(builder, "%s--%s-text: %s;\n", indent, prefix, palette.Text)
}
