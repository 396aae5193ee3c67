package database

import (
	"errors"
	"testing"

	"landmarks-backend/internal/models"
)

func newFavoriteFixture(t *testing.T) (*FavoriteRepo, int64, int64) {
	t.Helper()

	db := openTestDB(t)
	users := NewUserRepo(db)
	favorites := NewFavoriteRepo(db)

	alice := &models.User{Username: "alice", PasswordHash: "h"}
	bob := &models.User{Username: "bob", PasswordHash: "h"}
	if err := users.Create(alice); err != nil {
		t.Fatalf("Create alice returned error: %v", err)
	}
	if err := users.Create(bob); err != nil {
		t.Fatalf("Create bob returned error: %v", err)
	}

	return favorites, alice.ID, bob.ID
}

func TestFavoriteRepo_UpsertAndList(t *testing.T) {
	favorites, aliceID, _ := newFavoriteFixture(t)

	fav := &models.Favorite{UserID: aliceID, PageID: 42, Title: "Tower", Lat: 1.0, Lon: 2.0}
	if err := favorites.Upsert(fav); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	list, err := favorites.ListByUserID(aliceID)
	if err != nil {
		t.Fatalf("ListByUserID returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListByUserID returned %d favorites, want 1", len(list))
	}
	got := list[0]
	if got.PageID != 42 || got.Title != "Tower" || got.Lat != 1.0 || got.Lon != 2.0 {
		t.Fatalf("ListByUserID returned %+v", got)
	}
}

func TestFavoriteRepo_UpsertSamePageRefreshes(t *testing.T) {
	favorites, aliceID, _ := newFavoriteFixture(t)

	if err := favorites.Upsert(&models.Favorite{UserID: aliceID, PageID: 42, Title: "Tower", Lat: 1, Lon: 2}); err != nil {
		t.Fatalf("first Upsert returned error: %v", err)
	}
	if err := favorites.Upsert(&models.Favorite{UserID: aliceID, PageID: 42, Title: "Tower (renamed)", Lat: 1.5, Lon: 2.5}); err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}

	list, err := favorites.ListByUserID(aliceID)
	if err != nil {
		t.Fatalf("ListByUserID returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListByUserID returned %d favorites, want 1 (no duplicate rows)", len(list))
	}
	if list[0].Title != "Tower (renamed)" || list[0].Lat != 1.5 {
		t.Fatalf("Upsert did not refresh the row: %+v", list[0])
	}
}

func TestFavoriteRepo_AddThenRemove(t *testing.T) {
	favorites, aliceID, _ := newFavoriteFixture(t)

	if err := favorites.Upsert(&models.Favorite{UserID: aliceID, PageID: 42, Title: "Tower", Lat: 1, Lon: 2}); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if err := favorites.DeleteByPageID(aliceID, 42); err != nil {
		t.Fatalf("DeleteByPageID returned error: %v", err)
	}

	list, err := favorites.ListByUserID(aliceID)
	if err != nil {
		t.Fatalf("ListByUserID returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("ListByUserID returned %d favorites after remove, want 0", len(list))
	}
}

func TestFavoriteRepo_RemoveMissing(t *testing.T) {
	favorites, aliceID, _ := newFavoriteFixture(t)

	if err := favorites.Upsert(&models.Favorite{UserID: aliceID, PageID: 42, Title: "Tower", Lat: 1, Lon: 2}); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	if err := favorites.DeleteByPageID(aliceID, 777); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("DeleteByPageID error = %v, want ErrFavoriteNotFound", err)
	}

	// Storage unchanged
	count, err := favorites.CountByUserID(aliceID)
	if err != nil {
		t.Fatalf("CountByUserID returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountByUserID = %d after failed remove, want 1", count)
	}
}

func TestFavoriteRepo_ScopedToOwner(t *testing.T) {
	favorites, aliceID, bobID := newFavoriteFixture(t)

	if err := favorites.Upsert(&models.Favorite{UserID: aliceID, PageID: 42, Title: "Tower", Lat: 1, Lon: 2}); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	// Bob cannot see or remove Alice's favorite
	list, err := favorites.ListByUserID(bobID)
	if err != nil {
		t.Fatalf("ListByUserID returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("bob sees %d favorites, want 0", len(list))
	}
	if err := favorites.DeleteByPageID(bobID, 42); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("cross-user DeleteByPageID error = %v, want ErrFavoriteNotFound", err)
	}

	// Both users may favorite the same page independently
	if err := favorites.Upsert(&models.Favorite{UserID: bobID, PageID: 42, Title: "Tower", Lat: 1, Lon: 2}); err != nil {
		t.Fatalf("bob Upsert returned error: %v", err)
	}
}
