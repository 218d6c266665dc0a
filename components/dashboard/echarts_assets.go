package dashboard

import "strings"

// DefaultEChartsAssetsCDN is the public go-echarts assets bucket. Deployments
// on the municipal network point BootstrapOptions.AssetsHost at a mirror.
const DefaultEChartsAssetsCDN = "https://go-echarts.github.io/go-echarts-assets/assets/"

func ensureTrailingSlash(host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.HasSuffix(host, "/") {
		return host
	}
	return host + "/"
}
