package present

import (
	"strconv"
	"strings"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// PlainText renders instructions without markup. Lists keep their
// markers so structure survives.
func PlainText(instrs []domain.Instruction) string {
	blocks := make([]string, 0, len(instrs))
	for _, in := range instrs {
		switch in.Kind {
		case domain.InstrBulletList, domain.InstrNumberList:
			lines := make([]string, 0, len(in.Children))
			for i, c := range in.Children {
				marker := "• "
				if in.Kind == domain.InstrNumberList {
					marker = strconv.Itoa(i+1) + ". "
				}
				lines = append(lines, marker+c.Text)
			}
			blocks = append(blocks, strings.Join(lines, "\n"))
		case domain.InstrImage:
			if in.Text != "" {
				blocks = append(blocks, "["+in.Text+"]")
			}
		default:
			if in.Text != "" {
				blocks = append(blocks, in.Text)
			}
		}
	}
	return strings.Join(blocks, "\n\n")
}
