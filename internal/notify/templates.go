package notify

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

var confirmationHTML = htmltemplate.Must(htmltemplate.New("confirmation.html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Booking Confirmation</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #d97706 0%, #b45309 100%); color: white; padding: 30px; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; }
    .booking-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
    .detail-label { font-weight: bold; color: #555; }
    .highlight { color: #d97706; font-weight: bold; }
    .footer { background: #333; color: white; padding: 20px; text-align: center; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">{{.Hotel.Name}}</div>
      <h1>Booking Confirmation</h1>
      <p>Thank you for choosing {{.Hotel.Name}} for your luxury experience</p>
    </div>
    <div class="content">
      <h2>Dear {{.Booking.FullName}},</h2>
      <p>We have received your booking request. Our team is preparing to provide you with an exceptional experience.</p>
      <div class="booking-details">
        <h3>Booking Details</h3>
        <div class="detail-row"><span class="detail-label">Booking ID:</span><span class="highlight">{{.Booking.ID}}</span></div>
        <div class="detail-row"><span class="detail-label">Service Type:</span><span>{{.ServiceLabel}}</span></div>
        <div class="detail-row"><span class="detail-label">Check-in Date:</span><span>{{.CheckIn}}</span></div>
        <div class="detail-row"><span class="detail-label">Check-out Date:</span><span>{{.CheckOut}}</span></div>
        {{- if .Booking.PreferredTime}}
        <div class="detail-row"><span class="detail-label">Preferred Time:</span><span>{{.Booking.PreferredTime}}</span></div>
        {{- end}}
        <div class="detail-row"><span class="detail-label">Number of Guests:</span><span>{{.Booking.NumberOfGuests}}</span></div>
        {{- if .Booking.SpecialRequests}}
        <div class="detail-row"><span class="detail-label">Special Requests:</span><span>{{.Booking.SpecialRequests}}</span></div>
        {{- end}}
      </div>
      <h3>What's Next?</h3>
      <ul>
        <li>Our concierge team will contact you within 24 hours to confirm final details</li>
        <li>You'll receive a detailed itinerary 48 hours before your arrival</li>
        <li>For any changes or questions, please contact us using your booking ID</li>
      </ul>
      <p><strong>Important Information:</strong></p>
      <ul>
        <li>Please arrive 15 minutes before your scheduled time</li>
        <li>Bring a valid ID for check-in</li>
        <li>Cancellations must be made 48 hours in advance</li>
      </ul>
    </div>
    <div class="footer">
      <p><strong>{{.Hotel.LegalName}}</strong></p>
      <p>{{.Hotel.Address}}</p>
      <p>Phone: {{.Hotel.Phone}} | Email: {{.Hotel.Email}}</p>
    </div>
  </div>
</body>
</html>
`))

var confirmationText = texttemplate.Must(texttemplate.New("confirmation.txt").Parse(`BOOKING CONFIRMATION - {{.Hotel.Name}}

Dear {{.Booking.FullName}},

Thank you for choosing {{.Hotel.Name}}. We have received your booking request.

BOOKING DETAILS:
- Booking ID: {{.Booking.ID}}
- Service Type: {{.ServiceLabel}}
- Check-in Date: {{.CheckIn}}
- Check-out Date: {{.CheckOut}}
- Preferred Time: {{with .Booking.PreferredTime}}{{.}}{{else}}Not specified{{end}}
- Number of Guests: {{.Booking.NumberOfGuests}}
- Special Requests: {{with .Booking.SpecialRequests}}{{.}}{{else}}None{{end}}

WHAT'S NEXT:
- Our concierge team will contact you within 24 hours
- You'll receive a detailed itinerary 48 hours before arrival
- For changes or questions, contact us with your booking ID

CONTACT INFORMATION:
{{.Hotel.LegalName}}
{{.Hotel.Address}}
Phone: {{.Hotel.Phone}}
Email: {{.Hotel.Email}}
`))

var adminHTML = htmltemplate.Must(htmltemplate.New("admin.html").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #333; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .booking-info { background: white; padding: 15px; margin: 10px 0; border-left: 4px solid #d97706; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h2>New Booking Received</h2></div>
    <div class="content">
      <div class="booking-info">
        <h3>Booking ID: {{.Booking.ID}}</h3>
        <p><strong>Customer:</strong> {{.Booking.FullName}}</p>
        <p><strong>Email:</strong> {{.Booking.Email}}</p>
        <p><strong>Phone:</strong> {{.Booking.Phone}}</p>
        <p><strong>Service:</strong> {{.ServiceLabel}}</p>
        <p><strong>Dates:</strong> {{.Booking.CheckInDate}} to {{.Booking.CheckOutDate}}</p>
        <p><strong>Guests:</strong> {{.Booking.NumberOfGuests}}</p>
        {{- if .Booking.SpecialRequests}}
        <p><strong>Special Requests:</strong> {{.Booking.SpecialRequests}}</p>
        {{- end}}
      </div>
      <p><strong>Action Required:</strong> Please follow up with the customer within 24 hours to confirm booking details.</p>
    </div>
  </div>
</body>
</html>
`))

var adminText = texttemplate.Must(texttemplate.New("admin.txt").Parse(`NEW BOOKING RECEIVED

Booking ID: {{.Booking.ID}}
Customer: {{.Booking.FullName}}
Email: {{.Booking.Email}}
Phone: {{.Booking.Phone}}
Service: {{.ServiceLabel}}
Dates: {{.Booking.CheckInDate}} to {{.Booking.CheckOutDate}}
Guests: {{.Booking.NumberOfGuests}}
Special Requests: {{with .Booking.SpecialRequests}}{{.}}{{else}}None{{end}}

Action Required: Follow up with customer within 24 hours.
`))
