package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders tag as an SNBT-like indented string for debugging and test
// failure output. It performs no interpretation of game-specific tag
// contents — only the NBT shape itself — filling the role a GUI tree
// viewer would, without being one.
func Print(name string, tag Tag) string {
	var sb strings.Builder
	printTag(&sb, name, tag, 0)

	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func printTag(sb *strings.Builder, name string, tag Tag, depth int) {
	indent(sb, depth)
	if name != "" {
		sb.WriteString(name)
		sb.WriteString(": ")
	}

	switch t := tag.(type) {
	case Byte:
		fmt.Fprintf(sb, "%dB\n", t)
	case Short:
		fmt.Fprintf(sb, "%dS\n", t)
	case Int:
		fmt.Fprintf(sb, "%d\n", t)
	case Long:
		fmt.Fprintf(sb, "%dL\n", t)
	case Float:
		fmt.Fprintf(sb, "%sF\n", strconv.FormatFloat(float64(t), 'g', -1, 32))
	case Double:
		fmt.Fprintf(sb, "%sD\n", strconv.FormatFloat(float64(t), 'g', -1, 64))
	case String:
		fmt.Fprintf(sb, "%q\n", string(t))
	case ByteArray:
		fmt.Fprintf(sb, "[B;%d values]\n", len(t))
	case IntArray:
		fmt.Fprintf(sb, "[I;%d values]\n", len(t))
	case LongArray:
		fmt.Fprintf(sb, "[L;%d values]\n", len(t))
	case *List:
		fmt.Fprintf(sb, "List<%s>[%d]\n", t.ElemType, len(t.Items))
		for i, item := range t.Items {
			printTag(sb, strconv.Itoa(i), item, depth+1)
		}
	case *Compound:
		fmt.Fprintf(sb, "Compound{%d}\n", t.Len())
		t.Range(func(key string, child Tag) bool {
			printTag(sb, key, child, depth+1)
			return true
		})
	default:
		sb.WriteString("<nil>\n")
	}
}
