package karabiner

import (
	"fmt"
	"sort"
)

// applicationBundles maps short application aliases to anchored bundle
// identifier patterns.
var applicationBundles = map[string][]string{
	"activity_monitor": {`^com\.apple\.ActivityMonitor$`},
	"finder":           {`^com\.apple\.finder$`},
	"iterm2":           {`^com\.googlecode\.iterm2$`},
	"loginwindow":      {`^com\.apple\.loginwindow$`},
	"terminal":         {`^com\.apple\.Terminal$`},
	"virtual_machine": {
		`^com\.vmware\.fusion$`,
		`^com\.vmware\.horizon$`,
		`^com\.vmware\.view$`,
		`^com\.parallels\.desktop$`,
		`^com\.parallels\.vm$`,
		`^com\.parallels\.desktop\.console$`,
		`^org\.virtualbox\.app\.VirtualBoxVM$`,
		`^com\.citrix\.XenAppViewer$`,
		`^com\.vmware\.proxyApp\.`,
		`^com\.parallels\.winapp\.`,
	},
}

// UnknownApplicationError is returned for an alias missing from the
// application table.
type UnknownApplicationError struct {
	Alias string
}

func (e *UnknownApplicationError) Error() string {
	return fmt.Sprintf("unknown application alias %q (known: %v)", e.Alias, ApplicationAliases())
}

// ApplicationAliases lists the aliases FrontmostApplicationUnless accepts.
func ApplicationAliases() []string {
	out := make([]string, 0, len(applicationBundles))
	for k := range applicationBundles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// InputSourceIf builds a condition that holds while the active input mode is
// one of modeIDs.
func InputSourceIf(modeIDs ...string) Condition {
	sources := make([]InputSource, 0, len(modeIDs))
	for _, id := range modeIDs {
		sources = append(sources, InputSource{InputModeID: id})
	}
	return Condition{Type: ConditionInputSourceIf, InputSources: sources}
}

// FrontmostApplicationUnless builds a condition that holds unless the
// frontmost application is one of aliases.
func FrontmostApplicationUnless(aliases ...string) (Condition, error) {
	var bundles []string
	for _, alias := range aliases {
		ids, ok := applicationBundles[alias]
		if !ok {
			return Condition{}, &UnknownApplicationError{Alias: alias}
		}
		bundles = append(bundles, ids...)
	}
	return Condition{Type: ConditionFrontmostApplicationUnless, BundleIdentifiers: bundles}, nil
}
