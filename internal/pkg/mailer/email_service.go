package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendResetToken(toEmail, token string) error
	SendWelcome(toEmail, name string) error
	SendQuizCompleted(toEmail, name string) error
	SendMatchVelocitySlow(toEmail, name string) error
	SendSubscriptionThanks(toEmail, name, planName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	// Get Frontend URL from ENV or default to a safe placeholder
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to GetUnlocked!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #6366f1; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)

	return s.send(toEmail, "Your Verification Code", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	// Construct the clickable link pointing to the FRONTEND
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #6366f1; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendWelcome(toEmail, name string) error {
	body := fmt.Sprintf(`
		<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h1 style="color: #6366f1;">Welcome to GetUnlocked%s!</h1>
			<p>Your profile is now live and we're already finding compatible matches for you.</p>
			<p>Get ready to discover meaningful connections!</p>
		</div>
	`, greetingName(name))

	return s.send(toEmail, "Welcome to GetUnlocked - Your Profile is Live!", body)
}

func (s *emailService) SendQuizCompleted(toEmail, name string) error {
	resultsLink := fmt.Sprintf("%s/quiz-results", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<div style="text-align: center; margin-bottom: 30px;">
				<h1 style="color: #6366f1; margin-bottom: 10px;">Your Compatibility Profile is Ready!</h1>
				<p style="color: #6b7280; font-size: 16px;">Discover your unique connection insights</p>
			</div>
			<div style="background: linear-gradient(135deg, #6366f1 0%%, #8b5cf6 100%%); padding: 30px; border-radius: 12px; color: white; margin-bottom: 30px;">
				<h2 style="margin: 0 0 15px 0; font-size: 24px;">Your Results Are In!</h2>
				<p style="margin: 0; font-size: 16px; opacity: 0.9;">
					We've analyzed your quiz responses and found some amazing insights about how you connect with others.
				</p>
			</div>
			<div style="background: #f9fafb; padding: 25px; border-radius: 8px; margin-bottom: 25px;">
				<h3 style="color: #374151; margin: 0 0 15px 0;">Your Profile Includes:</h3>
				<ul style="color: #6b7280; line-height: 1.6; padding-left: 20px;">
					<li>Personalized compatibility score</li>
					<li>Your unique vibe signals</li>
					<li>Deep insights about your connection style</li>
					<li>Curated matches based on your responses</li>
				</ul>
			</div>
			<div style="text-align: center; margin: 30px 0;">
				<a href="%s" style="background: #6366f1; color: white; padding: 15px 30px; border-radius: 8px; text-decoration: none; font-weight: 600; display: inline-block;">
					View Your Full Results
				</a>
			</div>
			<div style="border-top: 1px solid #e5e7eb; padding-top: 20px; text-align: center;">
				<p style="color: #9ca3af; font-size: 14px; margin: 0;">
					Ready to find deeper connections? Your matches are waiting for you.
				</p>
			</div>
		</div>
	`, resultsLink)

	return s.send(toEmail, "Your GetUnlocked Compatibility Results", body)
}

func (s *emailService) SendMatchVelocitySlow(toEmail, name string) error {
	matchesLink := fmt.Sprintf("%s/matches", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h1 style="color: #6366f1;">We miss you%s!</h1>
			<p>New compatible people have joined since your last visit.</p>
			<p>Your next meaningful connection might already be waiting.</p>
			<div style="text-align: center; margin: 30px 0;">
				<a href="%s" style="background: #6366f1; color: white; padding: 15px 30px; border-radius: 8px; text-decoration: none; font-weight: 600; display: inline-block;">
					See Your New Matches
				</a>
			</div>
		</div>
	`, greetingName(name), matchesLink)

	return s.send(toEmail, "New Matches Are Waiting For You", body)
}

func (s *emailService) SendSubscriptionThanks(toEmail, name, planName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h1 style="color: #6366f1;">Thank you%s!</h1>
			<p>Your <strong>%s</strong> subscription is now active.</p>
			<p>Compatibility analysis, unlimited messaging and your daily digest are unlocked.</p>
		</div>
	`, greetingName(name), planName)

	return s.send(toEmail, "Your GetUnlocked Subscription is Active", body)
}

func greetingName(name string) string {
	if name == "" {
		return ""
	}
	return ", " + name
}
