package hierarchy_test

import (
	"fmt"

	"github.com/katalvlaran/dominance/dominance"
	"github.com/katalvlaran/dominance/hierarchy"
	"github.com/katalvlaran/dominance/matrix"
)

// ExampleAnalyzer_Analyze configures an analyzer from YAML and reports the
// hierarchy of a small group.
func ExampleAnalyzer_Analyze() {
	cfg, err := hierarchy.ParseConfig([]byte("methods: [LDI, rowsum]\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	a, _ := hierarchy.NewAnalyzer(cfg)

	w, _ := matrix.New([]string{"rex", "ada", "bo"}, [][]float64{
		{0, 2, 1},
		{8, 0, 6},
		{3, 1, 0},
	})
	rep, _ := a.Analyze("pen-1", w)
	fmt.Println("order:", rep.Order)
	fmt.Printf("s_index: %.3f  t_index: %.3f\n", rep.SIndex, rep.TIndex)
	fmt.Println("LDI rank:", rep.Scores[dominance.MethodLindquist].Ranked())
	// Output:
	// order: [ada bo rex]
	// s_index: 0.381  t_index: 1.000
	// LDI rank: [ada bo rex]
}
