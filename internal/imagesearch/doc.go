// Package imagesearch finds recipe photos via the DuckDuckGo image search
// API. A search first obtains a vqd request token from the landing page and
// then queries the image endpoint for large photo results. Requests are sent
// with a browser user agent because the endpoint rejects obvious bots.
package imagesearch
