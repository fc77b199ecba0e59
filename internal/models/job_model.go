package models

// AssemblyJob is the working set for one assembly request. All temp files
// it owns are deleted on every exit path; only the output survives the job.
type AssemblyJob struct {
	ID        string
	Status    string
	VideoURL  string
	AudioFile string
	Subtitles []string
	Title     string
	Stamp     int64
	TempFiles []string
	Output    string
}

const (
	JobStatusIdle       = "idle"
	JobStatusChecked    = "checked"
	JobStatusAssembling = "assembling"
	JobStatusSucceeded  = "succeeded"
	JobStatusFailed     = "failed"
)

func (j *AssemblyJob) OwnTemp(path string) {
	j.TempFiles = append(j.TempFiles, path)
}
