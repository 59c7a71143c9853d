package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests that un-register works as expected.
func TestCron(t *testing.T) {
	prov := NewCron()
	mu := sync.Mutex{}
	called := 0
	var id int
	id, err := prov.AddFunc("@every 1s", func() {
		mu.Lock()
		defer mu.Unlock()

		called++
		if 2 == called {
			prov.RemoveFunc(id)
		}
	})

	assert.NoError(t, err)
	time.Sleep(4 * time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, called)
}

// Tests wrong schedule.
func TestCronWrongSpec(t *testing.T) {
	prov := NewCron()
	_, err := prov.AddFunc("@every never", func() {})
	assert.Error(t, err)
}

// Tests that stopped scheduler doesn't run jobs.
func TestCronStop(t *testing.T) {
	prov := NewCron()
	mu := sync.Mutex{}
	called := 0
	_, err := prov.AddFunc("@every 1s", func() {
		mu.Lock()
		defer mu.Unlock()
		called++
	})
	assert.NoError(t, err)

	prov.Stop()
	prov.Stop()
	time.Sleep(2 * time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, called)
}
