/*
Package market implements the marketplace contract of the provenance system.
Owners of ownership tokens create listings with a price, currency, listing
type, expiry and optional discount; buyers purchase active listings in a
single transaction that settles payment through the Royalty contract and
moves the token via a managed transfer on the Token contract.

A token has at most one active listing at any time. Listing IDs are assigned
sequentially starting from zero and are never reused; cancelled and sold
listings stay readable with Active set to false.

# Contract notifications

ListingCreated notification. This notification is produced when an owner
lists a token for sale.

	ListingCreated
	  - name: listingID
	    type: Integer
	  - name: tokenID
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: price
	    type: Integer

ListingCancelled notification. This notification is produced when the
listing owner withdraws an active listing.

	ListingCancelled
	  - name: listingID
	    type: Integer

PriceUpdated notification. This notification is produced when the listing
owner changes the price of an active listing.

	PriceUpdated
	  - name: listingID
	    type: Integer
	  - name: price
	    type: Integer

Sale notification. This notification is produced when a purchase completes.
The amount is the effective sale price after the listing discount.

	Sale
	  - name: listingID
	    type: Integer
	  - name: tokenID
	    type: Integer
	  - name: seller
	    type: Hash160
	  - name: buyer
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package market
