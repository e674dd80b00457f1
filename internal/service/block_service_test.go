package service

import (
	"testing"

	"github.com/blacktechlight/internal/db"
)

func seedBlocks(t *testing.T, svc *BlockService) []db.HomeBlock {
	t.Helper()

	gdb := svc.db
	mustCreate(t, gdb, &db.HomeBlock{Key: db.BlockKeyHero, Title: "Hero", SortOrder: 1, IsEnabled: true})
	mustCreate(t, gdb, &db.HomeBlock{Key: db.BlockKeyCatalog, Title: "Catalog", SortOrder: 2, IsEnabled: true})
	mustCreate(t, gdb, &db.HomeBlock{Key: db.BlockKeyAbout, Title: "About", SortOrder: 3, IsEnabled: true})

	blocks, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	return blocks
}

func TestBlockToggleIsAnInvolution(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewBlockService(gdb)
	blocks := seedBlocks(t, svc)

	target := blocks[1]
	if err := svc.Toggle(target.ID); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if err := svc.Toggle(target.ID); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	after, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i, b := range after {
		if b.IsEnabled != blocks[i].IsEnabled {
			t.Errorf("block %s: enabled flag changed after double toggle", b.Key)
		}
		if b.SortOrder != blocks[i].SortOrder {
			t.Errorf("block %s: sort order changed by toggle, %d -> %d", b.Key, blocks[i].SortOrder, b.SortOrder)
		}
	}
}

func TestBlockMoveEdgeIsNoOp(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewBlockService(gdb)
	blocks := seedBlocks(t, svc)

	if err := svc.Move(blocks[0].ID, MoveUp); err != nil {
		t.Fatalf("moving first block up should be a silent no-op, got %v", err)
	}
	if err := svc.Move(blocks[2].ID, MoveDown); err != nil {
		t.Fatalf("moving last block down should be a silent no-op, got %v", err)
	}

	after, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i, b := range after {
		if b.ID != blocks[i].ID || b.SortOrder != blocks[i].SortOrder {
			t.Errorf("edge move changed ordering at position %d", i)
		}
	}
}

func TestBlockMoveSwapsOnlyNeighbours(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewBlockService(gdb)
	blocks := seedBlocks(t, svc)

	if err := svc.Move(blocks[2].ID, MoveUp); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	after, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if after[0].ID != blocks[0].ID {
		t.Errorf("first block must be untouched by a swap lower down")
	}
	if after[1].ID != blocks[2].ID || after[2].ID != blocks[1].ID {
		t.Errorf("expected neighbours swapped, got order %s, %s, %s",
			after[0].Key, after[1].Key, after[2].Key)
	}
	if after[1].SortOrder != blocks[1].SortOrder || after[2].SortOrder != blocks[2].SortOrder {
		t.Errorf("swap must exchange the two sort order values exactly")
	}
}

func TestBlockMoveUnknownID(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewBlockService(gdb)
	seedBlocks(t, svc)

	if err := svc.Move(9999, MoveUp); err != ErrBlockNotFound {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestBlockUpdateEmptySubtitleStoresNull(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewBlockService(gdb)
	blocks := seedBlocks(t, svc)

	if err := svc.Update(blocks[0].ID, "Свет для сцены", "  "); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var block db.HomeBlock
	if err := gdb.First(&block, blocks[0].ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if block.Title != "Свет для сцены" {
		t.Errorf("unexpected title %q", block.Title)
	}
	if block.Subtitle != nil {
		t.Errorf("blank subtitle should be stored as null, got %q", *block.Subtitle)
	}
}
