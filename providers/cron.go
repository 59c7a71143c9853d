package providers

// ICronProvider defines scheduler used for periodic jobs,
// e.g. logger flushing and thermostat simulation.
// Returned job ID is used to remove the job.
type ICronProvider interface {
	AddFunc(spec string, cmd func()) (int, error)
	RemoveFunc(id int)
	Stop()
}
