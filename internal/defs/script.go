// internal/defs/script.go
package defs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// compileEffect compiles an upgrade script. The script sees one global map,
// `stats`, holding every stat of the target; whatever it leaves there is written back.
func compileEffect(src string) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(src))
	if err := script.Add("stats", map[string]interface{}{}); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))
	script.SetMaxAllocs(10000)
	return script.Compile()
}

func runEffect(compiled *tengo.Compiled, target StatTarget) error {
	c := compiled.Clone()

	in := make(map[string]interface{})
	for _, name := range target.StatNames() {
		if v, ok := target.Stat(name); ok {
			in[name] = v
		}
	}
	if err := c.Set("stats", in); err != nil {
		return fmt.Errorf("script: set stats: %w", err)
	}
	if err := c.Run(); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	out := c.Get("stats").Map()
	for _, name := range writeOrder(target.StatNames()) {
		v, ok := toFloat(out[name])
		if !ok {
			continue
		}
		target.SetStat(name, v)
	}
	return nil
}

// writeOrder puts max health first and health last, so a health value
// raised together with its cap is not clamped to the old cap.
func writeOrder(names []string) []string {
	ordered := make([]string, 0, len(names))
	var hasMax, hasHealth bool
	for _, n := range names {
		switch n {
		case StatMaxHealth:
			hasMax = true
		case StatHealth:
			hasHealth = true
		default:
			ordered = append(ordered, n)
		}
	}
	if hasMax {
		ordered = append([]string{StatMaxHealth}, ordered...)
	}
	if hasHealth {
		ordered = append(ordered, StatHealth)
	}
	return ordered
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
