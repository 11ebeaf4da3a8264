package merge

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/google/cel-go/cel"
)

// ExprRule configures a merge rule as a CEL expression over the raw
// records of the two candidates, bound as prev and next.
//
//	prev.Channel == next.Channel && prev.From == next.From
type ExprRule struct {
	Type   string        `yaml:"type"`
	Window time.Duration `yaml:"window"`
	Expr   string        `yaml:"expr"`
}

var celEnv = func() *cel.Env {
	env, err := cel.NewEnv(
		cel.Variable("prev", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("next", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		panic(fmt.Sprintf("merge: cel environment: %v", err))
	}
	return env
}()

// CompileRule turns an ExprRule into a Rule. The expression must compile
// and yield a bool; evaluation errors at merge time count as "no merge".
func CompileRule(cfg ExprRule) (Rule, error) {
	if cfg.Type == "" {
		return Rule{}, fmt.Errorf("merge rule: type is required")
	}
	if cfg.Window <= 0 {
		return Rule{}, fmt.Errorf("merge rule %s: window must be positive", cfg.Type)
	}
	ast, issues := celEnv.Compile(cfg.Expr)
	if issues != nil && issues.Err() != nil {
		return Rule{}, fmt.Errorf("merge rule %s: compile: %w", cfg.Type, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return Rule{}, fmt.Errorf("merge rule %s: expression yields %s, want bool", cfg.Type, ast.OutputType())
	}
	prg, err := celEnv.Program(ast,
		cel.InterruptCheckFrequency(100),
		cel.CostLimit(10000),
	)
	if err != nil {
		return Rule{}, fmt.Errorf("merge rule %s: program: %w", cfg.Type, err)
	}

	return Rule{
		Type:   event.Type(cfg.Type),
		Window: cfg.Window,
		Continues: func(prev, next event.Event) bool {
			p, n := rawMap(prev), rawMap(next)
			if p == nil || n == nil {
				return false
			}
			out, _, err := prg.Eval(map[string]any{"prev": p, "next": n})
			if err != nil {
				return false
			}
			ok, _ := out.Value().(bool)
			return ok
		},
	}, nil
}

func rawMap(ev event.Event) map[string]any {
	raw := ev.Head().Raw
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
