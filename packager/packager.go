package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PackageConfig holds the configuration for packaging.
type PackageConfig struct {
	Name      string // Archive name (without extension), also the top-level folder inside it
	SourceDir string // Directory with the build artifacts
	OutputDir string // Directory to output the zip file
}

// Package zips the build artifacts for distribution.
// Returns the path to the created zip file.
func Package(config PackageConfig) (string, error) {
	fmt.Println("Packaging for distribution...")

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	zipPath := filepath.Join(config.OutputDir, config.Name+".zip")
	absZip, err := filepath.Abs(zipPath)
	if err != nil {
		return "", fmt.Errorf("resolving zip path: %w", err)
	}

	zipFile, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating zip file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	if err := addDirToZip(zipWriter, config.SourceDir, config.Name, absZip); err != nil {
		zipWriter.Close()
		return "", fmt.Errorf("adding %s to zip: %w", config.SourceDir, err)
	}

	if err := zipWriter.Close(); err != nil {
		return "", fmt.Errorf("finishing zip file: %w", err)
	}

	fmt.Printf("✅ Package created: %s\n", zipPath)
	return zipPath, nil
}

// addFileToZip adds a single file to the zip archive.
func addFileToZip(zipWriter *zip.Writer, filePath, nameInZip string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("getting file info: %w", err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("creating zip header: %w", err)
	}

	header.Name = nameInZip
	header.Method = zip.Deflate

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip entry: %w", err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("writing file to zip: %w", err)
	}

	fmt.Printf("  Added: %s\n", nameInZip)
	return nil
}

// addDirToZip adds a directory and its contents to the zip archive recursively.
// The archive itself is skipped when it lives inside dirPath.
func addDirToZip(zipWriter *zip.Writer, dirPath, nameInZip, zipPath string) error {
	return filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == dirPath {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && abs == zipPath {
			return nil
		}

		relPath, err := filepath.Rel(dirPath, path)
		if err != nil {
			return fmt.Errorf("calculating relative path: %w", err)
		}

		entry := filepath.ToSlash(filepath.Join(nameInZip, relPath))

		if info.IsDir() {
			header := &zip.FileHeader{
				Name:   entry + "/",
				Method: zip.Deflate,
			}
			if _, err := zipWriter.CreateHeader(header); err != nil {
				return fmt.Errorf("creating directory entry: %w", err)
			}
			return nil
		}

		return addFileToZip(zipWriter, path, entry)
	})
}
