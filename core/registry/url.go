// Package registry parses and constructs Terraform Registry resource
// documentation URLs. A ResourceURL is the canonical identity of one
// resource's documentation page.
package registry

import (
	"fmt"
	"regexp"
)

// urlPattern matches both full registry URLs and bare
// namespace/provider/version/docs/resources/name paths.
var urlPattern = regexp.MustCompile(
	`(?:https?://registry\.terraform\.io/providers/)?` +
		`(?P<namespace>[\w-]+)/` +
		`(?P<provider>[\w-]+)/` +
		`(?P<version>[\w.-]+)/` +
		`docs/resources/` +
		`(?P<resource>[\w_]+)`)

// ResourceURL holds the components of a registry resource documentation URL.
type ResourceURL struct {
	Namespace string
	Provider  string
	Version   string
	Resource  string
}

// Parse extracts URL components from a full registry URL or a bare
// namespace/provider/version/docs/resources/name path.
func Parse(raw string) (*ResourceURL, error) {
	m := urlPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("invalid registry URL: %q", raw)
	}

	u := &ResourceURL{}
	for i, name := range urlPattern.SubexpNames() {
		switch name {
		case "namespace":
			u.Namespace = m[i]
		case "provider":
			u.Provider = m[i]
		case "version":
			u.Version = m[i]
		case "resource":
			u.Resource = m[i]
		}
	}
	return u, nil
}

// FromComponents builds a ResourceURL from individual components.
func FromComponents(namespace, provider, version, resource string) *ResourceURL {
	return &ResourceURL{
		Namespace: namespace,
		Provider:  provider,
		Version:   version,
		Resource:  resource,
	}
}

// String reconstructs the canonical documentation URL.
func (u *ResourceURL) String() string {
	return fmt.Sprintf(
		"https://registry.terraform.io/providers/%s/%s/%s/docs/resources/%s",
		u.Namespace, u.Provider, u.Version, u.Resource)
}
