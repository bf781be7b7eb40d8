// Package stayrec provides a Go client for the stayrec hotel activity
// recommendation service.
//
//	client, _ := stayrec.New("http://localhost:8080",
//	    stayrec.WithAPIKey("secret"),
//	    stayrec.WithTenant("resort-group-a"),
//	)
//	recs, _ := client.ForUser(ctx, 42, 10)
//	similar, _ := client.Similar(ctx, recs[0].ID, 5)
package stayrec
