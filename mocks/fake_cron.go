//+build !release

package mocks

import "sync"

type fakeCron struct {
	sync.Mutex
	jobs map[int]func()
	last int
}

// AddFunc stores the job, so test can trigger it manually.
func (c *fakeCron) AddFunc(spec string, cmd func()) (int, error) {
	c.Lock()
	defer c.Unlock()

	c.last++
	c.jobs[c.last] = cmd
	return c.last, nil
}

// RemoveFunc removes stored job.
func (c *fakeCron) RemoveFunc(id int) {
	c.Lock()
	defer c.Unlock()

	delete(c.jobs, id)
}

// Trigger invokes every stored job once.
func (c *fakeCron) Trigger() {
	c.Lock()
	jobs := make([]func(), 0, len(c.jobs))
	for _, v := range c.jobs {
		jobs = append(jobs, v)
	}
	c.Unlock()

	for _, v := range jobs {
		v()
	}
}

// Stop drops every stored job.
func (c *fakeCron) Stop() {
	c.Lock()
	defer c.Unlock()

	c.jobs = make(map[int]func())
}

// Len returns number of stored jobs.
func (c *fakeCron) Len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.jobs)
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *fakeCron {
	return &fakeCron{
		jobs: make(map[int]func()),
	}
}
