package services

import (
	"testing"
)

func TestResourceCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	project := seedProject(t, db, "Alpha")

	created, err := svc.Create(project.ID, &CreateResourceRequest{
		Name: "  Design doc ",
		URL:  "https://example.com/design",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "Design doc" {
		t.Errorf("name = %q, want trimmed %q", created.Name, "Design doc")
	}

	resources, err := svc.List(project.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resources) != 1 {
		t.Fatalf("resources = %d, want 1", len(resources))
	}
	if resources[0].URL != "https://example.com/design" {
		t.Errorf("url = %q", resources[0].URL)
	}
}

func TestResourceCreate_ProjectNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)

	_, err := svc.Create(999, &CreateResourceRequest{Name: "Docs", URL: "https://example.com"})
	assertAppError(t, err, 404)
}

func TestResourceUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	project := seedProject(t, db, "Alpha")

	created, err := svc.Create(project.ID, &CreateResourceRequest{
		Name: "Docs", URL: "https://example.com/old",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(project.ID, created.ID, &UpdateResourceRequest{
		Name: "Docs v2", URL: "https://example.com/new",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Docs v2" || updated.URL != "https://example.com/new" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestResourceUpdate_WrongProject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	project := seedProject(t, db, "Alpha")
	other := seedProject(t, db, "Beta")

	created, err := svc.Create(project.ID, &CreateResourceRequest{
		Name: "Docs", URL: "https://example.com/docs",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Update(other.ID, created.ID, &UpdateResourceRequest{
		Name: "Hijack", URL: "https://example.com/evil",
	})
	assertAppError(t, err, 404)
}

func TestResourceDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	project := seedProject(t, db, "Alpha")

	created, err := svc.Create(project.ID, &CreateResourceRequest{
		Name: "Docs", URL: "https://example.com/docs",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(project.ID, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	resources, err := svc.List(project.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resources) != 0 {
		t.Errorf("resources after delete = %d, want 0", len(resources))
	}
}

func TestResourceDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	project := seedProject(t, db, "Alpha")

	err := svc.Delete(project.ID, 999)
	assertAppError(t, err, 404)
}
