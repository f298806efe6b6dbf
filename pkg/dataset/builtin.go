package dataset

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
)

// Sample is the stock three-sources, one-process, three-sinks diagram.
func Sample() Dataset {
	return Dataset{
		Nodes: []flow.NodeSpec{
			{Name: "Fuente A", Color: "#3b82f6"},
			{Name: "Fuente B", Color: "#10b981"},
			{Name: "Fuente C", Color: "#f59e0b"},
			{Name: "Proceso", Color: "#6b7280"},
			{Name: "Destino X", Color: "#ef4444"},
			{Name: "Destino Y", Color: "#8b5cf6"},
			{Name: "Destino Z", Color: "#ec4899"},
		},
		Links: []flow.LinkSpec{
			{Source: "Fuente A", Target: "Proceso", Value: 150},
			{Source: "Fuente B", Target: "Proceso", Value: 100},
			{Source: "Fuente C", Target: "Proceso", Value: 80},
			{Source: "Proceso", Target: "Destino X", Value: 120},
			{Source: "Proceso", Target: "Destino Y", Value: 110},
			{Source: "Proceso", Target: "Destino Z", Value: 100},
		},
	}
}

// EnergyNodes and EnergyLinks are the text lists of the energy example.
const (
	EnergyNodes = `Energía Solar
Energía Eólica
Energía Hidráulica
Red Nacional
Industria
Hogares
Comercios
Pérdidas`

	EnergyLinks = `Energía Solar,Red Nacional,200
Energía Eólica,Red Nacional,150
Energía Hidráulica,Red Nacional,100
Red Nacional,Industria,180
Red Nacional,Hogares,150
Red Nacional,Comercios,100
Red Nacional,Pérdidas,20`
)

// EnergyExample parses the energy example lists.
func EnergyExample() Dataset {
	d, err := ParseLists(strings.NewReader(EnergyNodes), strings.NewReader(EnergyLinks))
	if err != nil {
		panic("energy example: " + err.Error())
	}
	return d
}

type category struct {
	prefix string
	colors []string
}

var randomCategories = []category{
	{"Fuente", []string{"#ff9500", "#00bcd4", "#2196f3", "#4caf50"}},
	{"Proceso", []string{"#9c27b0", "#ff5722", "#795548", "#607d8b"}},
	{"Destino", []string{"#f44336", "#e91e63", "#673ab7", "#3f51b5"}},
}

// Random generates a staged flow: two to four nodes per category, and from
// every node one to three links into distinct nodes of the next category
// with integer values in [10, 109]. The same seed yields the same dataset.
func Random(seed uint64) Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var d Dataset
	stages := make([][]string, len(randomCategories))
	for ci, c := range randomCategories {
		count := rng.IntN(3) + 2
		for i := range count {
			name := c.prefix + " " + strconv.Itoa(i+1)
			d.Nodes = append(d.Nodes, flow.NodeSpec{Name: name, Color: c.colors[i%len(c.colors)]})
			stages[ci] = append(stages[ci], name)
		}
	}

	for s := 0; s < len(stages)-1; s++ {
		targets := stages[s+1]
		for _, src := range stages[s] {
			n := min(rng.IntN(len(targets))+1, 3)
			shuffled := slices.Clone(targets)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			for _, tgt := range shuffled[:n] {
				d.Links = append(d.Links, flow.LinkSpec{Source: src, Target: tgt, Value: float64(rng.IntN(100) + 10)})
			}
		}
	}
	return d
}

var builtins = map[string]func(seed uint64) Dataset{
	"sample": func(uint64) Dataset { return Sample() },
	"energy": func(uint64) Dataset { return EnergyExample() },
	"random": Random,
}

// Builtin returns the built-in dataset called name. The seed only affects
// "random".
func Builtin(name string, seed uint64) (Dataset, error) {
	fn, ok := builtins[name]
	if !ok {
		return Dataset{}, errors.New(errors.ErrCodeInvalidInput, "unknown built-in dataset %q (want one of %s)",
			name, strings.Join(BuiltinNames(), ", "))
	}
	return fn(seed), nil
}

// BuiltinNames lists the built-in datasets.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
