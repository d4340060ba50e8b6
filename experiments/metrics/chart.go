package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteCharts renders the win counts per agent and the average think time
// per ply into a single HTML page next to the CSV files.
func (w *Writer) WriteCharts(configs []AgentConfig, games []GameRecord, moves []MoveRecord) error {
	page := components.NewPage()
	page.PageTitle = "Quoridor benchmark"
	page.AddCharts(winChart(configs, games), thinkTimeChart(games, moves))

	path := filepath.Join(w.baseDir, "charts.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create charts file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func agentLabel(config AgentConfig) string {
	return fmt.Sprintf("agent %d (%s)", config.ID, config.Kind)
}

// agentFor returns the agent ID that played player in game.
func agentFor(game GameRecord, player int) int {
	if player == 0 {
		return game.Agent1
	}
	return game.Agent2
}

func winChart(configs []AgentConfig, games []GameRecord) *charts.Bar {
	wins := map[int]int{}
	draws := 0
	for _, game := range games {
		if game.Winner < 0 {
			draws++
			continue
		}
		wins[agentFor(game, game.Winner)]++
	}

	labels := make([]string, 0, len(configs)+1)
	items := make([]opts.BarData, 0, len(configs)+1)
	for _, config := range configs {
		labels = append(labels, agentLabel(config))
		items = append(items, opts.BarData{Value: wins[config.ID]})
	}
	labels = append(labels, "draw")
	items = append(items, opts.BarData{Value: draws})

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Wins", Subtitle: fmt.Sprintf("%d games", len(games))}),
	)
	bar.SetXAxis(labels).AddSeries("games", items)
	return bar
}

func thinkTimeChart(games []GameRecord, moves []MoveRecord) *charts.Line {
	byID := make(map[int]GameRecord, len(games))
	for _, game := range games {
		byID[game.ID] = game
	}

	// agent -> step -> (sum ms, count)
	type acc struct {
		sum   float64
		count int
	}
	series := map[int]map[int]*acc{}
	maxStep := 0
	for _, move := range moves {
		agent := agentFor(byID[move.Game], move.Player)
		if series[agent] == nil {
			series[agent] = map[int]*acc{}
		}
		a := series[agent][move.Step]
		if a == nil {
			a = &acc{}
			series[agent][move.Step] = a
		}
		a.sum += float64(move.Duration.Microseconds()) / 1000
		a.count++
		if move.Step > maxStep {
			maxStep = move.Step
		}
	}

	steps := make([]string, 0, maxStep)
	for step := 1; step <= maxStep; step++ {
		steps = append(steps, fmt.Sprintf("%d", step))
	}

	agents := make([]int, 0, len(series))
	for agent := range series {
		agents = append(agents, agent)
	}
	sort.Ints(agents)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Average think time (ms)"}),
	)
	line.SetXAxis(steps)
	for _, agent := range agents {
		items := make([]opts.LineData, 0, maxStep)
		for step := 1; step <= maxStep; step++ {
			a := series[agent][step]
			if a == nil {
				items = append(items, opts.LineData{Value: nil})
				continue
			}
			items = append(items, opts.LineData{Value: a.sum / float64(a.count)})
		}
		line.AddSeries(fmt.Sprintf("agent %d", agent), items)
	}
	return line
}
