//go:build linux || darwin || freebsd || openbsd || netbsd

package proc

import "testing"

func TestSignalRejectsInvalidPID(t *testing.T) {
	if err := TerminateProcess(0); err == nil {
		t.Fatal("TerminateProcess(0) should fail")
	}
	if err := ForceKillProcess(-1); err == nil {
		t.Fatal("ForceKillProcess(-1) should fail")
	}
}

func TestSetProcessPriorityValidation(t *testing.T) {
	if err := SetProcessPriority(0, 10); err == nil {
		t.Fatal("invalid PID should fail")
	}
	if err := SetProcessPriority(1, -21); err == nil {
		t.Fatal("nice below -20 should fail")
	}
	if err := SetProcessPriority(1, 20); err == nil {
		t.Fatal("nice above 19 should fail")
	}
}
