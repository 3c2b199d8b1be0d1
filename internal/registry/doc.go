// Package registry keeps the session's customers and accounts.
//
// # Overview
//
// Repository describes storage for users and accounts; MemoryRepository is
// the only implementation and keeps everything in slices for the lifetime of
// the process. Service layers the business rules on top:
//
//   - CreateUser rejects a second user with the same identity number.
//   - CreateAccount builds an account for an existing user without storing it.
//   - OpenAccount numbers the account (count + 1), builds and stores it.
//
// A failed OpenAccount never consumes an account number.
//
// Typical Usage
//
//	svc := registry.NewService(registry.NewMemoryRepository(), validation.New(), models.DefaultAgencyCode)
//	_ = svc.CreateUser(ctx, models.User{Identity: "12345678901", Name: "Ana"})
//	acc, _ := svc.OpenAccount(ctx, "12345678901")
//	accounts, _ := svc.Accounts(ctx)
//	for _, block := range registry.ListAccounts(accounts) {
//		fmt.Println(block)
//	}
package registry
