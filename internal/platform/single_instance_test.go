package platform

import (
	"errors"
	"testing"
)

func TestSingleInstanceGuard(t *testing.T) {
	name := "DockEyes-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("loopback port unavailable: %v", err)
	}
	if guard.Address() != instanceAddress(name) {
		t.Fatalf("Address() = %q, want %q", guard.Address(), instanceAddress(name))
	}

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = again.Release()
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Fatalf("Release on nil guard: %v", err)
	}
	if guard.Address() != "" {
		t.Fatal("nil guard should have an empty address")
	}
}
