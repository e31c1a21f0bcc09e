package minelib

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

func TestReadCanonical(t *testing.T) {
	in := `id,x,y,z,tonn,val_ore,dest,precedentes
0,10,20,30,50,5,1,[]
1,10,30,30,80,0,0,"[0]"
2,20,20,20,60,8,1,"[0,1]"
`
	blocks, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	want := model.Block{ID: 2, X: 20, Y: 20, Z: 20, Tonnage: 60, Destination: 1, OreValue: 8, Predecessors: []int{0, 1}}
	if !reflect.DeepEqual(blocks[2], want) {
		t.Errorf("block 2 = %+v, want %+v", blocks[2], want)
	}
	if blocks[0].Predecessors != nil {
		t.Errorf("block 0 predecessors = %v, want none", blocks[0].Predecessors)
	}
}

func TestReadSniffsSemicolonAndHeaderCase(t *testing.T) {
	in := " ID ; X ;Y; Z ;Precedentes\n4;1;2;3;[]\n5;1;2;0;[4]\n"
	blocks, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(blocks) != 2 || blocks[0].ID != 4 || blocks[1].Predecessors[0] != 4 {
		t.Fatalf("unexpected blocks: %+v", blocks)
	}
}

func TestReadDefaultsForOptionalColumns(t *testing.T) {
	in := "id,x,y,z,precedentes\n0,0,0,30,[]\n1,0,0,10,[0]\n"
	blocks, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, b := range blocks {
		if b.Tonnage != model.DefaultTonnage {
			t.Errorf("block %d tonnage = %v, want default", b.ID, b.Tonnage)
		}
		if b.Destination != model.DefaultDestination {
			t.Errorf("block %d destination = %v, want default", b.ID, b.Destination)
		}
	}
	// depth ramp against the max z of the file (30)
	if blocks[0].OreValue != 0 || blocks[1].OreValue != 200 {
		t.Errorf("ore values = %v, %v; want 0, 200", blocks[0].OreValue, blocks[1].OreValue)
	}
}

func TestReadMissingColumns(t *testing.T) {
	in := "id,x,tonn\n0,1,100\n"
	_, err := Read(strings.NewReader(in))
	var se *model.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	want := []string{"precedentes", "y", "z"}
	if !reflect.DeepEqual(se.Missing, want) {
		t.Errorf("missing = %v, want %v", se.Missing, want)
	}
}

func TestReadReportsBadCells(t *testing.T) {
	cases := []struct{ name, in string }{
		{"id", "id,x,y,z,precedentes\nabc,1,2,3,[]\n"},
		{"coordinate", "id,x,y,z,precedentes\n0,oops,2,3,[]\n"},
		{"precedentes", "id,x,y,z,precedentes\n0,1,2,3,0;1\n"},
		{"empty optional cell", "id,x,y,z,tonn,precedentes\n0,1,2,3,,[]\n"},
	}
	for _, tc := range cases {
		if _, err := Read(strings.NewReader(tc.in)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		} else if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("%s: error should name the line: %v", tc.name, err)
		}
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.csv")
	blocks := []model.Block{
		{ID: 0, Tonnage: 10, Destination: 1, OreValue: 5},
		{ID: 1, Tonnage: 10, Destination: 0, Predecessors: []int{0}},
	}
	if err := WriteInstance(path, blocks); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Len() != 2 || m.Successors(0)[0] != 1 {
		t.Fatalf("unexpected model: len=%d", m.Len())
	}
}

func TestLoadModelRejectsUnknownPredecessor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.csv")
	blocks := []model.Block{{ID: 0, Predecessors: []int{7}}}
	if err := WriteInstance(path, blocks); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadModel(path)
	var me *model.MalformedPrecedenceError
	if !errors.As(err, &me) {
		t.Fatalf("expected MalformedPrecedenceError, got %v", err)
	}
	if me.Pred != 7 {
		t.Errorf("pred = %d, want 7", me.Pred)
	}
}
