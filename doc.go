// Package cloudflare provides a client for the CloudFlare v4 administrative
// API. It authenticates requests, dispatches them over a pre-configured
// transport, and classifies every possible outcome into a closed set of
// error kinds so callers can branch deterministically: credential errors,
// transport errors, HTTP-status errors, and application-level errors
// embedded in a 200-status envelope.
//
// Basic usage:
//
//	client, err := cloudflare.New(apiKey, "admin@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Get(ctx, "zones", cloudflare.Params{"name": "example.com"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var zones []Zone
//	if err := resp.DecodeResult(&zones); err != nil {
//	    log.Fatal(err)
//	}
//
// Error kinds are matched with errors.Is or errors.As:
//
//	_, err := client.Delete(ctx, "zones/"+id, nil)
//	if errors.Is(err, cloudflare.ErrInvalidCredentials) {
//	    // key rejected locally or by the service
//	}
//
//	var apiErr *cloudflare.APIError
//	if errors.As(err, &apiErr) {
//	    for _, e := range apiErr.Errors {
//	        fmt.Printf("%d: %s\n", e.Code, e.Message)
//	    }
//	}
package cloudflare
