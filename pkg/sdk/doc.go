// Package keepstack provides a Go client for the keepstack content
// assistant API.
//
//	client := keepstack.New("http://localhost:8080",
//	    keepstack.WithAPIKey("secret"),
//	)
//
//	saved, _ := client.SaveItem(ctx, "user-1", keepstack.Item{
//	    Title: "Couch to 5k",
//	    Tags:  []string{"running", "health"},
//	})
//
//	ans, _ := client.Query(ctx, keepstack.QueryRequest{
//	    UserID: "user-1",
//	    Query:  "what fitness content do I have?",
//	})
//	fmt.Println(ans.Answer)
package keepstack
