package match

import "github.com/bizmatch/bizmatch/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during a
// ranking call.
type RankMonitor interface {
	Start(query string)
	AfterKeywordExtraction(keywords []string)
	AfterSimilarityScoring(scores []float64)
	KeywordHit(result *core.RankedProgram)
	SimilarityHit(result *core.RankedProgram)
	RegionRejected(program *core.Program)
	Finish(results []core.RankedProgram)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterKeywordExtraction(_ []string)    {}
func (n *noopMonitor) AfterSimilarityScoring(_ []float64)   {}
func (n *noopMonitor) KeywordHit(_ *core.RankedProgram)     {}
func (n *noopMonitor) SimilarityHit(_ *core.RankedProgram)  {}
func (n *noopMonitor) RegionRejected(_ *core.Program)       {}
func (n *noopMonitor) Finish(_ []core.RankedProgram)        {}
