package domain

import "strings"

// SSHSource rewrites a source URL to its authenticated scp-like form
// (git@host:path.git). URLs already in that form pass through unchanged.
func SSHSource(url string) string {
	if strings.HasPrefix(url, "git@") {
		return ensureGitSuffix(url)
	}
	rest, ok := stripScheme(url)
	if !ok {
		return ensureGitSuffix(url)
	}
	host, path, found := strings.Cut(rest, "/")
	if !found {
		return ensureGitSuffix(url)
	}
	return ensureGitSuffix("git@" + host + ":" + path)
}

// HTTPSSource rewrites a source URL to its anonymous https form. URLs already
// carrying a scheme pass through with the scheme forced to https.
func HTTPSSource(url string) string {
	if strings.HasPrefix(url, "git@") {
		hostPath := strings.TrimPrefix(url, "git@")
		host, path, found := strings.Cut(hostPath, ":")
		if !found {
			return ensureGitSuffix(url)
		}
		return ensureGitSuffix("https://" + host + "/" + path)
	}
	if rest, ok := stripScheme(url); ok {
		return ensureGitSuffix("https://" + rest)
	}
	return ensureGitSuffix("https://" + url)
}

func stripScheme(url string) (string, bool) {
	for _, scheme := range []string{"https://", "http://", "ssh://", "git://"} {
		if strings.HasPrefix(url, scheme) {
			return strings.TrimPrefix(url, scheme), true
		}
	}
	return url, false
}

func ensureGitSuffix(url string) string {
	if strings.HasSuffix(url, ".git") {
		return url
	}
	return url + ".git"
}
