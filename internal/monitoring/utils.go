package monitoring

import (
	"regexp"
	"strings"
)

// reFuncName captures package, receiver, and method names out of a
// runtime.FuncForPC name.
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

func getSegmentName(fullFuncName string) string {
	matches := reFuncName.FindStringSubmatch(fullFuncName)
	if len(matches) < 4 {
		return fullFuncName
	}

	packageName := matches[1]
	receiver := matches[2]
	methodName := matches[3]

	var result []string
	for _, part := range []string{packageName, receiver, methodName} {
		if part != "" {
			result = append(result, part)
		}
	}

	return strings.Join(result, ".")
}
