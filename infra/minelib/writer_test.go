package minelib

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

func TestWriteReadRoundTrip(t *testing.T) {
	blocks := []model.Block{
		{ID: 0, X: 10, Y: 20, Z: 30, Tonnage: 100, Destination: 1, OreValue: 12.5},
		{ID: 1, X: 10, Y: 30, Z: 20, Tonnage: 80.25, Destination: 0, OreValue: -3, Predecessors: []int{0}},
		{ID: 2, X: 20, Y: 20, Z: 20, Tonnage: 60, Destination: 1, OreValue: 8, Predecessors: []int{0, 1}},
	}
	var buf bytes.Buffer
	if err := Write(&buf, blocks); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "id,x,y,z,tonn,val_ore,dest,precedentes\n") {
		t.Fatalf("unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !reflect.DeepEqual(got, blocks) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, blocks)
	}
}
