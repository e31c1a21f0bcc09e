package minelib

import (
	"reflect"
	"strings"
	"testing"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

func TestNormalizeSlotColumns(t *testing.T) {
	blocks := `id;x;y;z;tonn;BlockValue
0;0;0;20;50;10
1;0;10;20;50;-2
2;0;0;10;50;7
`
	precs := `id;prec1;prec2;prec3
0;-1;-1;-1
1;-1;-1;-1
2;0;1;-1
`
	out, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(out))
	}
	if !reflect.DeepEqual(out[2].Predecessors, []int{0, 1}) {
		t.Errorf("preds = %v, want [0 1]", out[2].Predecessors)
	}
	if out[0].Predecessors != nil {
		t.Errorf("surface preds = %v, want none", out[0].Predecessors)
	}
	if out[0].OreValue != 10 || out[1].OreValue != -2 {
		t.Errorf("blockvalue not renamed: %v, %v", out[0].OreValue, out[1].OreValue)
	}
	// no destination column: inferred from the value sign
	if out[0].Destination != model.DestinationOre || out[1].Destination != model.DestinationWaste {
		t.Errorf("destinations = %d, %d", out[0].Destination, out[1].Destination)
	}
}

func TestNormalizeSynthesizesAlignedIDs(t *testing.T) {
	blocks := "x,y,z\n0,0,10\n0,0,0\n"
	precs := "prec1\n-1\n0\n"
	out, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out[0].ID != 0 || out[1].ID != 1 {
		t.Fatalf("ids = %d, %d; want 0, 1", out[0].ID, out[1].ID)
	}
	if !reflect.DeepEqual(out[1].Predecessors, []int{0}) {
		t.Errorf("preds = %v, want [0]", out[1].Predecessors)
	}
}

func TestNormalizeLooseIDColumnMatch(t *testing.T) {
	blocks := "id,x,y,z\n0,0,0,0\n1,0,0,0\n"
	precs := "block_id,prec1\n0,-1\n1,0\n"
	out, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(out[1].Predecessors, []int{0}) {
		t.Errorf("preds = %v, want [0]", out[1].Predecessors)
	}
}

func TestNormalizePrecedentesPassthrough(t *testing.T) {
	blocks := "id,x,y,z\n0,0,0,0\n1,0,0,0\n2,0,0,0\n"
	precs := "id,precedentes\n0,\n1,0;junk\n2,\"[0,1]\"\n"
	out, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out[0].Predecessors != nil {
		t.Errorf("preds 0 = %v, want none", out[0].Predecessors)
	}
	if !reflect.DeepEqual(out[1].Predecessors, []int{0}) {
		t.Errorf("preds 1 = %v, want [0]", out[1].Predecessors)
	}
	if !reflect.DeepEqual(out[2].Predecessors, []int{0, 1}) {
		t.Errorf("preds 2 = %v, want [0 1]", out[2].Predecessors)
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	blocks := "id,tonnage\n0,500\n1,600\n"
	precs := "id,prec1\n0,-1\n1,0\n"
	out, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	for _, b := range out {
		if b.X != 0 || b.Y != 0 || b.Z != 0 {
			t.Errorf("block %d coordinates = %v,%v,%v; want zeros", b.ID, b.X, b.Y, b.Z)
		}
	}
	if out[0].Tonnage != 500 || out[1].Tonnage != 600 {
		t.Errorf("tonnage alias not picked up: %v, %v", out[0].Tonnage, out[1].Tonnage)
	}
	// flat z means a zero depth ramp, so everything is waste
	if out[0].OreValue != 0 || out[0].Destination != model.DestinationWaste {
		t.Errorf("fallback value/destination = %v, %d", out[0].OreValue, out[0].Destination)
	}
}

func TestNormalizeMisalignedRows(t *testing.T) {
	blocks := "x,y,z\n0,0,0\n0,0,0\n"
	precs := "prec1\n-1\n"
	if _, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs)); err == nil {
		t.Fatal("expected alignment error")
	}
}

func TestNormalizeRoundTripLoads(t *testing.T) {
	blocks := "id,x,y,z,tonn,blockvalue\n0,0,0,10,50,5\n1,0,0,0,50,3\n"
	precs := "id,prec1,prec2\n0,-1,-1\n1,0,-1\n"
	out, err := Normalize(strings.NewReader(blocks), strings.NewReader(precs))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if _, err := model.New(out); err != nil {
		t.Fatalf("normalized output should load: %v", err)
	}
}
