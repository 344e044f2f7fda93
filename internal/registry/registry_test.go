package registry

import (
	"testing"

	"github.com/vovakirdan/bubble-arena/internal/entity"
)

type stubLibrary struct{ entity.Library }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", "Stub", func(entity.Tuning) entity.Library {
		return stubLibrary{}
	})

	if !Exists("stub-create") {
		t.Fatal("Exists() = false after Register")
	}

	lib, err := Create("stub-create", entity.Tuning{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, ok := lib.(stubLibrary); !ok {
		t.Errorf("Create() returned %T, expected stubLibrary", lib)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-library", entity.Tuning{}); err == nil {
		t.Error("Create() should fail for an unknown name")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(entity.Tuning) entity.Library { return stubLibrary{} }
	Register("stub-dup", "Stub", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("stub-dup", "Stub", f)
}

func TestListSorted(t *testing.T) {
	f := func(entity.Tuning) entity.Library { return stubLibrary{} }
	Register("stub-z", "Z", f)
	Register("stub-a", "A", f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
