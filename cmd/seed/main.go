// Command seed installs the demo dataset: an admin account, a few
// employees, sample attendance, and sample leave requests. Existing data
// is wiped first, so it is only meant for development databases.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	"github.com/dayflow-hq/dayflow-backend-go/internal/fixtures"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/vault"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := seed(context.Background(), db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("database seeded")
	log.Println("admin login: DFJODO20220001 / admin123")
	log.Println("employee login: DFALSM20230001 / Dayflow@123")
}

func seed(ctx context.Context, db *database.DB) error {
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	txManager := postgresql.NewTxManager(db)
	credentialVault := vault.NewBcryptVault()

	return txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		q := postgresql.GetQuerier(ctx, db)

		if _, err := q.Exec(ctx, `
			TRUNCATE leave_requests, attendance_records, employees, issuance_counters
		`); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}

		for _, seeded := range fixtures.Employees() {
			hash, err := credentialVault.Hash(seeded.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", seeded.LoginID, err)
			}
			seeded.Employee.PasswordHash = hash

			if _, err := employeeRepo.Create(ctx, seeded.Employee); err != nil {
				return fmt.Errorf("create employee %s: %w", seeded.LoginID, err)
			}
		}

		for _, record := range fixtures.AttendanceRecords() {
			if _, err := attendanceRepo.Create(ctx, record); err != nil {
				return fmt.Errorf("create attendance record %s: %w", record.ID, err)
			}
		}

		for _, request := range fixtures.LeaveRequests() {
			if _, err := leaveRequestRepo.Create(ctx, request); err != nil {
				return fmt.Errorf("create leave request %s: %w", request.ID, err)
			}
		}

		// Advance the issuance counters past the seeded login IDs so the
		// next issued identifier does not collide.
		for year, serial := range fixtures.CounterSeeds() {
			if _, err := q.Exec(ctx, `
				INSERT INTO issuance_counters (year, current_serial)
				VALUES ($1, $2)
				ON CONFLICT (year)
				DO UPDATE SET current_serial = GREATEST(issuance_counters.current_serial, $2)
			`, year, serial); err != nil {
				return fmt.Errorf("seed issuance counter for %d: %w", year, err)
			}
		}

		return nil
	})
}
