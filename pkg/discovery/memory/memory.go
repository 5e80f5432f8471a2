package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkvy/videoclub/pkg/discovery"
)

// HealthTTL is how long an instance stays active after its last health report.
const HealthTTL = 5 * time.Second

// Registry defines an in-memory service registry.
type Registry struct {
	sync.RWMutex
	now          func() time.Time
	serviceAddrs map[string]map[string]*serviceInstance
}

type serviceInstance struct {
	hostPort   string
	lastActive time.Time
}

// NewRegistry creates a new in-memory service registry.
func NewRegistry() *Registry {
	return &Registry{now: time.Now, serviceAddrs: map[string]map[string]*serviceInstance{}}
}

// Register creates a service record in the registry.
func (r *Registry) Register(_ context.Context, instanceID string, serviceName string, hostPort string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		r.serviceAddrs[serviceName] = map[string]*serviceInstance{}
	}
	r.serviceAddrs[serviceName][instanceID] = &serviceInstance{hostPort: hostPort, lastActive: r.now()}
	return nil
}

// Deregister removes a service record from the registry.
func (r *Registry) Deregister(_ context.Context, instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		return nil
	}
	delete(r.serviceAddrs[serviceName], instanceID)
	return nil
}

// ReportHealthyState refreshes the last active time of an instance.
func (r *Registry) ReportHealthyState(instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	instances, ok := r.serviceAddrs[serviceName]
	if !ok {
		return errors.New("service is not registered yet")
	}
	inst, ok := instances[instanceID]
	if !ok {
		return errors.New("service instance is not registered yet")
	}
	inst.lastActive = r.now()
	return nil
}

// ServiceAddresses returns the addresses of instances that reported within HealthTTL.
func (r *Registry) ServiceAddresses(_ context.Context, serviceName string) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	cutoff := r.now().Add(-HealthTTL)
	var res []string
	for _, i := range r.serviceAddrs[serviceName] {
		if i.lastActive.Before(cutoff) {
			continue
		}
		res = append(res, i.hostPort)
	}
	if len(res) == 0 {
		return nil, discovery.ErrNotFound
	}
	return res, nil
}
