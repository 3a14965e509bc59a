// Package testutil provides test helpers for winpack tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleManifest is a Windows 10 package manifest with every section winpack
// edits. Its capabilities are deliberately unnormalized.
const SampleManifest = `<?xml version="1.0" encoding="utf-8"?>
<Package xmlns="http://schemas.microsoft.com/appx/manifest/foundation/windows10" xmlns:mp="http://schemas.microsoft.com/appx/2014/phone/manifest" xmlns:uap="http://schemas.microsoft.com/appx/manifest/uap/windows10" IgnorableNamespaces="uap mp">
  <Identity Name="org.example.app" Publisher="CN=Example" Version="1.0.0.0" />
  <mp:PhoneIdentity PhoneProductId="11111111-2222-3333-4444-555555555555" PhonePublisherId="00000000-0000-0000-0000-000000000000" />
  <Properties>
    <DisplayName>Example</DisplayName>
    <PublisherDisplayName>Example Corp</PublisherDisplayName>
    <Logo>images\StoreLogo.png</Logo>
  </Properties>
  <Dependencies>
    <TargetDeviceFamily Name="Windows.Universal" MinVersion="10.0.10240.0" MaxVersionTested="10.0.10240.0" />
  </Dependencies>
  <Resources>
    <Resource Language="x-generate" />
  </Resources>
  <Applications>
    <Application Id="ExampleApp" StartPage="www/index.html">
      <uap:VisualElements DisplayName="Example" Description="Example app" BackgroundColor="#464646" Square150x150Logo="images\Square150x150Logo.png" Square44x44Logo="images\Square44x44Logo.png">
        <uap:SplashScreen Image="images\splashscreen.png" />
      </uap:VisualElements>
    </Application>
  </Applications>
  <Capabilities>
    <DeviceCapability Name="location" />
    <Capability Name="internetClient" />
    <Capability Name="picturesLibrary" />
    <uap:Capability Name="picturesLibrary" />
  </Capabilities>
</Package>
`

// Windows81Manifest lacks the uap namespace declaration.
const Windows81Manifest = `<?xml version="1.0" encoding="utf-8"?>
<Package xmlns="http://schemas.microsoft.com/appx/2010/manifest">
  <Identity Name="org.example.app" Publisher="CN=Example" Version="1.0.0.0" />
</Package>
`

// TempDir creates a temporary directory for tests and returns a cleanup function.
func TempDir(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := os.MkdirTemp("", "winpack-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("warning: failed to remove temp dir %s: %v", dir, err)
		}
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteManifest writes SampleManifest into dir under name.
func WriteManifest(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, SampleManifest)
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}
