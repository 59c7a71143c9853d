// Package utils contains various helpers.
package utils

import (
	"sync"

	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/pkg/errors"
	"gopkg.in/robfig/cron.v2"
)

// Scheduler backed by robfig cron.
type cronProvider struct {
	sync.Mutex
	cron    *cron.Cron
	stopped bool
}

// NewCron creates and starts a new scheduler.
func NewCron() providers.ICronProvider {
	p := &cronProvider{
		cron: cron.New(),
	}

	p.cron.Start()
	return p
}

// AddFunc schedules a new job.
func (p *cronProvider) AddFunc(spec string, cmd func()) (int, error) {
	id, err := p.cron.AddFunc(spec, cmd)
	if err != nil {
		return -1, errors.Wrapf(err, "wrong schedule %s", spec)
	}

	return int(id), nil
}

// RemoveFunc removes scheduled job.
func (p *cronProvider) RemoveFunc(id int) {
	p.cron.Remove(cron.EntryID(id))
}

// Stop stops scheduler, running jobs are not interrupted.
// Subsequent calls do nothing.
func (p *cronProvider) Stop() {
	p.Lock()
	defer p.Unlock()

	if p.stopped {
		return
	}

	p.stopped = true
	p.cron.Stop()
}
