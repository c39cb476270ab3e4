package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"esencia-shop/models"
	"esencia-shop/repositories"
	"esencia-shop/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "customer",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := s.userRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	return s.userRepo.GetUserWithProfile(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) error {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.Address = req.Address

	return s.userRepo.UpdateProfile(ctx, profile)
}

func (s *AuthService) UpdateProfilePhoto(ctx context.Context, userID int, photoURL string) error {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if profile.PhotoURL != "" {
		utils.DeleteFile(profile.PhotoURL)
	}

	profile.PhotoURL = photoURL
	return s.userRepo.UpdateProfile(ctx, profile)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.VerifyPassword(user.Password, req.OldPassword) {
		return errors.New("invalid old password")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}

// ForgotPassword always reports success so the endpoint cannot be used to
// probe which emails have accounts. The OTP is only generated and mailed
// when the account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return
	}

	otp, err := generateOTP()
	if err != nil {
		log.Println("Failed to generate OTP:", err)
		return
	}

	if err := s.userRepo.SavePasswordReset(ctx, email, otp, time.Now().Add(5*time.Minute)); err != nil {
		log.Println("Failed to save password reset:", err)
		return
	}

	emailSvc, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service unavailable:", err)
		return
	}

	go func() {
		if err := emailSvc.SendOTPEmail(email, otp); err != nil {
			log.Println("Failed to send OTP email:", err)
		}
	}()
}

func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	reset, err := s.userRepo.GetPasswordReset(ctx, req.Email)
	if err != nil {
		return errors.New("invalid or expired OTP")
	}

	if reset.OTP != req.OTP || time.Now().After(reset.ExpiresAt) {
		return errors.New("invalid or expired OTP")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return errors.New("invalid or expired OTP")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	return s.userRepo.DeletePasswordReset(ctx, req.Email)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
