package utils

import (
	urlParser "net/url"
	"strings"

	. "github.com/DaZhi-the-Revelator/zed-arturo/types"
)

func UriToPath(uri Uri) (string, error) {
	if strings.HasPrefix(uri, "/") {
		return uri, nil
	}

	url, err := urlParser.Parse(uri)

	if err != nil {
		return "", err
	}

	return url.Path, nil
}

func ToUri(path string) Uri {
	if strings.HasPrefix(path, "/") {
		path = "file://" + path
	}

	return path
}

func P[T ~string | ~int32](src T) *T {
	return &src
}
