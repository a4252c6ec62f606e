package model

// Stage names. Start and End are not executed, they frame the stage graph.
const (
	StartStageName = "start"
	ReadStageName  = "read"
	SortStageName  = "sort"
	CheckStageName = "check"
	WriteStageName = "write"
	EndStageName   = "end"
)

// StageInfo describes one stage of a run.
type StageInfo struct {
	Name string
}

var (
	StartStage = &StageInfo{Name: StartStageName}
	EndStage   = &StageInfo{Name: EndStageName}
)
