package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := EnsureDir(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = EnsureDir(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestConfigDirHonorsOverride(t *testing.T) {
	tempDir := t.TempDir()
	override := filepath.Join(tempDir, "conf")
	t.Setenv(ConfigDirEnv, override)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("Failed to get config directory: %v", err)
	}

	if dir != override {
		t.Errorf("Expected config dir %s, got %s", override, dir)
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("Config directory was not created: %s", dir)
	}
}

func TestUserVideosDir(t *testing.T) {
	videosDir, err := UserVideosDir()
	if err != nil {
		t.Fatalf("Failed to get videos directory: %v", err)
	}

	if videosDir == "" {
		t.Fatal("Videos directory is empty")
	}

	// Should end with "Videos"
	if filepath.Base(videosDir) != "Videos" {
		t.Errorf("Expected directory to end with 'Videos', got: %s", videosDir)
	}
}

func TestRevealInFileManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mkv")

	err := RevealInFileManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestRevealInFileManager_RejectsURL(t *testing.T) {
	err := RevealInFileManager("https://example.com/video.mp4")
	if err == nil {
		t.Error("Expected error for URL input, got nil")
	}
}

func TestRevealInFileManager_RejectsEmptyPath(t *testing.T) {
	err := RevealInFileManager("")
	if err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}
