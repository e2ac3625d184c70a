package track

import (
	"sync"
	"time"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// perfMonitor aggregates stage timings for profiling. It is observational
// only; nothing reads it during gameplay.
type perfMonitor struct {
	mu     sync.Mutex
	report domain.PerformanceReport
	totals map[string]time.Duration
}

func newPerfMonitor() *perfMonitor {
	return &perfMonitor{
		report: domain.PerformanceReport{
			Stages: make(map[domain.PipelineStage]domain.StageTiming),
		},
		totals: make(map[string]time.Duration),
	}
}

func (p *perfMonitor) recordStage(playID string, stage domain.PipelineStage, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	timing := p.report.Stages[stage]
	timing.Count++
	timing.Total += elapsed
	if elapsed > timing.Max {
		timing.Max = elapsed
	}
	p.report.Stages[stage] = timing

	p.totals[playID] += elapsed
	if p.totals[playID] > p.report.SlowestPlay {
		p.report.SlowestPlay = p.totals[playID]
		p.report.SlowestPlayID = playID
	}
}

func (p *perfMonitor) recordPlay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.report.PlaysObserved++
}

func (p *perfMonitor) snapshot() domain.PerformanceReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := p.report
	out.Stages = make(map[domain.PipelineStage]domain.StageTiming, len(p.report.Stages))
	for k, v := range p.report.Stages {
		out.Stages[k] = v
	}
	return out
}
