package builtin

import (
	"reflect"
	"testing"
)

func TestNames(t *testing.T) {
	exp := []string{"final", "single-sphere", "three-spheres"}
	if names := Names(); !reflect.DeepEqual(names, exp) {
		t.Fatalf("expected builtin scenes %v; got %v", exp, names)
	}
}

func TestLoad(t *testing.T) {
	for _, name := range Names() {
		sc, err := Load(name)
		if err != nil {
			t.Fatalf("[%s] %v", name, err)
		}
		if err = sc.Camera.Validate(); err != nil {
			t.Fatalf("[%s] expected a valid camera; got %v", name, err)
		}
		if sc.World.Len() == 0 {
			t.Fatalf("[%s] expected a non-empty world", name)
		}
		if _, err = sc.Describe(); err != nil {
			t.Fatalf("[%s] expected scene to be serializable; got %v", name, err)
		}
	}

	if _, err := Load("teapot"); err == nil {
		t.Fatal("expected an error for an unknown scene")
	}
}

func TestFinalSceneIsStable(t *testing.T) {
	sc1, err := Final()
	if err != nil {
		t.Fatal(err)
	}
	sc2, err := Final()
	if err != nil {
		t.Fatal(err)
	}

	desc1, _ := sc1.Describe()
	desc2, _ := sc2.Describe()
	if !reflect.DeepEqual(desc1, desc2) {
		t.Fatal("expected the final scene layout to be identical across loads")
	}

	// Ground, three large spheres and up to 22x22 small ones
	if n := sc1.World.Len(); n < 4 || n > 4+22*22 {
		t.Fatalf("unexpected object count %d", n)
	}
}
